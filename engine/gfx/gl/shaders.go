package glbackend

// Built-in mesh shaders, used when no shader files are shipped next to the
// binary. Layout and uniform names are the contract the backend binds
// against; the Material block mirrors core.MaterialBlock (std140).

const DefaultVertexSource = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec3 aNormal;
layout(location=2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform mat4 uNormalMat;

out vec3 vNormal;
out vec3 vWorldPos;
out vec2 vUV;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uNormalMat) * aNormal;
    vUV = aUV;
    gl_Position = uViewProj * world;
}
` + "\x00"

const DefaultFragmentSource = `
#version 330 core
in vec3 vNormal;
in vec3 vWorldPos;
in vec2 vUV;

layout(std140) uniform Material {
    vec4 baseColor;
    vec3 emissive;
    float metallic;
    float roughness;
    float hasBaseColorTex;
    float hasNormalTex;
    float hasMetalRoughTex;
};

uniform sampler2D uBaseColorTex;
uniform sampler2D uNormalTex;
uniform sampler2D uMetalRoughTex;

out vec4 FragColor;

const vec3 lightDir = normalize(vec3(0.4, 1.0, 0.6));

void main() {
    vec4 albedo = baseColor;
    if (hasBaseColorTex > 0.5) {
        albedo *= texture(uBaseColorTex, vUV);
    }
    float rough = roughness;
    if (hasMetalRoughTex > 0.5) {
        rough *= texture(uMetalRoughTex, vUV).g;
    }
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, lightDir), 0.0);
    float ambient = 0.15;
    vec3 lit = albedo.rgb * (ambient + (1.0 - rough * 0.5) * diffuse);
    FragColor = vec4(lit + emissive, albedo.a);
}
` + "\x00"
